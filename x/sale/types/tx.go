package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Contribute(context.Context, *MsgContribute) (*MsgContributeResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	AdvancePhase(context.Context, *MsgAdvancePhase) (*MsgAdvancePhaseResponse, error)
	SetPaused(context.Context, *MsgSetPaused) (*MsgSetPausedResponse, error)
	Whitelist(context.Context, *MsgWhitelist) (*MsgWhitelistResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
}

// Response types

// MsgContributeResponse defines the response for Contribute
type MsgContributeResponse struct {
	TokensReleased math.Int `json:"tokens_released"`
}

// MsgClaimResponse defines the response for Claim
type MsgClaimResponse struct {
	TokensClaimed math.Int `json:"tokens_claimed"`
}

// MsgAdvancePhaseResponse defines the response for AdvancePhase
type MsgAdvancePhaseResponse struct {
	Phase Phase `json:"phase"`
}

// MsgSetPausedResponse defines the response for SetPaused
type MsgSetPausedResponse struct{}

// MsgWhitelistResponse defines the response for Whitelist
type MsgWhitelistResponse struct{}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct {
	Amount math.Int `json:"amount"`
}
