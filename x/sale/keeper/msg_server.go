package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the sale MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Contribute handles a purchase during the current phase
func (ms msgServer) Contribute(goCtx context.Context, msg *types.MsgContribute) (*types.MsgContributeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Contribute: validate: %w", err)
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("Contribute: invalid buyer address: %w", err)
	}

	released, err := ms.Keeper.Contribute(goCtx, buyer, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Contribute: %w", err)
	}

	return &types.MsgContributeResponse{
		TokensReleased: released,
	}, nil
}

// Claim handles claiming deferred tokens in the open phase
func (ms msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Claim: validate: %w", err)
	}

	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		return nil, fmt.Errorf("Claim: invalid claimer address: %w", err)
	}

	claimed, err := ms.Keeper.Claim(goCtx, claimer)
	if err != nil {
		return nil, fmt.Errorf("Claim: %w", err)
	}

	return &types.MsgClaimResponse{
		TokensClaimed: claimed,
	}, nil
}

// AdvancePhase handles admin phase transitions
func (ms msgServer) AdvancePhase(goCtx context.Context, msg *types.MsgAdvancePhase) (*types.MsgAdvancePhaseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AdvancePhase: validate: %w", err)
	}

	if err := ms.Keeper.AdvancePhase(goCtx, msg.Authority, msg.Target); err != nil {
		return nil, fmt.Errorf("AdvancePhase: %w", err)
	}

	return &types.MsgAdvancePhaseResponse{
		Phase: msg.Target,
	}, nil
}

// SetPaused handles pausing and resuming purchases
func (ms msgServer) SetPaused(goCtx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetPaused: validate: %w", err)
	}

	if err := ms.Keeper.SetPaused(goCtx, msg.Authority, msg.Paused); err != nil {
		return nil, fmt.Errorf("SetPaused: %w", err)
	}

	return &types.MsgSetPausedResponse{}, nil
}

// Whitelist handles seed-phase registration
func (ms msgServer) Whitelist(goCtx context.Context, msg *types.MsgWhitelist) (*types.MsgWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Whitelist: validate: %w", err)
	}

	addr, err := sdk.AccAddressFromBech32(msg.Address)
	if err != nil {
		return nil, fmt.Errorf("Whitelist: invalid address: %w", err)
	}

	if err := ms.Keeper.Whitelist(goCtx, msg.Authority, addr); err != nil {
		return nil, fmt.Errorf("Whitelist: %w", err)
	}

	return &types.MsgWhitelistResponse{}, nil
}

// Withdraw handles treasury withdrawals of sale proceeds
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	treasury, err := sdk.AccAddressFromBech32(msg.Treasury)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid treasury address: %w", err)
	}

	if err := ms.Keeper.Withdraw(goCtx, treasury, msg.Amount); err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{
		Amount: msg.Amount,
	}, nil
}
