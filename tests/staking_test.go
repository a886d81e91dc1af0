package tests

import (
	"path"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/common"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/staking/stakestate"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/staking/stakingconst"
)

const stakingPath = "../staking"

const minStake = 100

func deployStakingContract(t *testing.T, e *neotest.Executor, addrToken, treasury util.Uint160, exitLock int64) util.Uint160 {
	args := make([]interface{}, 4)
	args[0] = addrToken
	args[1] = treasury
	args[2] = int64(minStake)
	args[3] = exitLock

	c := neotest.CompileFile(t, e.CommitteeHash, stakingPath, path.Join(stakingPath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func newStakingInvoker(t *testing.T, exitLock int64) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e)
	h := deployStakingContract(t, e, tokenHash, e.CommitteeHash, exitLock)
	return e.CommitteeInvoker(h), e.CommitteeInvoker(tokenHash)
}

func TestStaking_Version(t *testing.T) {
	c, _ := newStakingInvoker(t, 0)
	c.Invoke(t, common.Version, "version")
}

func TestStaking_Stake(t *testing.T) {
	c, tok := newStakingInvoker(t, 0)

	verifier := c.NewAccount(t)
	tokenMint(t, tok, verifier.ScriptHash(), 1000)

	c.WithSigners(verifier).InvokeFail(t, stakingconst.ErrBelowMinimum,
		"stake", pub(verifier), minStake-1)

	outsider := c.NewAccount(t)
	c.WithSigners(outsider).InvokeFail(t, common.ErrWitnessFailed,
		"stake", pub(verifier), minStake)

	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "stake", pub(verifier), 300)
	tok.Invoke(t, 700, "balanceOf", verifier.ScriptHash())
	c.Invoke(t, int64(stakestate.Registered), "statusOf", pub(verifier))
	c.Invoke(t, stackitem.NewBool(false), "isSlashed", pub(verifier))

	// top-ups below the minimum are fine once registered
	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "stake", pub(verifier), 50)
	tok.Invoke(t, 650, "balanceOf", verifier.ScriptHash())
}

func TestStaking_Slash(t *testing.T) {
	c, tok := newStakingInvoker(t, 0)

	verifier := c.NewAccount(t)
	tokenMint(t, tok, verifier.ScriptHash(), 1000)
	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "stake", pub(verifier), 500)

	c.WithSigners(verifier).InvokeFail(t, common.ErrCommitteeWitnessFailed,
		"slash", pub(verifier), 10)
	c.InvokeFail(t, stakingconst.ErrBadPercentage, "slash", pub(verifier), 101)
	c.InvokeFail(t, stakingconst.ErrUnknownStake, "slash", pub(c.NewAccount(t)), 10)

	c.Invoke(t, stackitem.Null{}, "slash", pub(verifier), 40)
	c.Invoke(t, int64(stakestate.Slashed), "statusOf", pub(verifier))
	c.Invoke(t, stackitem.NewBool(true), "isSlashed", pub(verifier))

	// replaces, never compounds
	c.Invoke(t, stackitem.Null{}, "slash", pub(verifier), 20)

	c.WithSigners(verifier).InvokeFail(t, "stake is not accepting top-ups",
		"stake", pub(verifier), 100)
}

func TestStaking_Exit(t *testing.T) {
	c, tok := newStakingInvoker(t, 0)

	verifier := c.NewAccount(t)
	tokenMint(t, tok, verifier.ScriptHash(), 1000)
	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "stake", pub(verifier), 500)
	c.Invoke(t, stackitem.Null{}, "slash", pub(verifier), 40)

	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "exit", pub(verifier))
	c.Invoke(t, int64(stakestate.Exiting), "statusOf", pub(verifier))

	// slashing while exiting keeps the status
	c.Invoke(t, stackitem.Null{}, "slash", pub(verifier), 50)
	c.Invoke(t, int64(stakestate.Exiting), "statusOf", pub(verifier))

	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "exit", pub(verifier))
	c.Invoke(t, int64(stakestate.Exited), "statusOf", pub(verifier))

	// 50% of 500 released, the forfeit goes to the treasury
	tok.Invoke(t, 750, "balanceOf", verifier.ScriptHash())
	tok.Invoke(t, 250, "balanceOf", c.CommitteeHash)

	c.WithSigners(verifier).InvokeFail(t, stakingconst.ErrAlreadyExited, "exit", pub(verifier))
	c.InvokeFail(t, stakingconst.ErrAlreadyExited, "slash", pub(verifier), 10)
}

func TestStaking_ExitLock(t *testing.T) {
	lock := int64(365 * 24 * time.Hour / time.Millisecond)
	c, tok := newStakingInvoker(t, lock)

	verifier := c.NewAccount(t)
	tokenMint(t, tok, verifier.ScriptHash(), 1000)
	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "stake", pub(verifier), 500)

	c.WithSigners(verifier).Invoke(t, stackitem.Null{}, "exit", pub(verifier))
	c.WithSigners(verifier).InvokeFail(t, stakingconst.ErrStillLocked, "exit", pub(verifier))
	c.Invoke(t, int64(stakestate.Exiting), "statusOf", pub(verifier))
}
