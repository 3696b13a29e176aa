package types

// Event types for the sale module
const (
	EventTypePurchase      = "purchase"
	EventTypeTokensClaimed = "tokens_claimed"
	EventTypePhaseStarted  = "phase_started"
	EventTypePauseToggled  = "pause_toggled"
	EventTypeWhitelisted   = "whitelisted"
	EventTypeWithdrawal    = "sale_withdrawal"
)

// Event attribute keys for the sale module
const (
	AttributeKeyBuyer            = "buyer"
	AttributeKeyClaimer          = "claimer"
	AttributeKeyAmount           = "amount"
	AttributeKeyTokensReleased   = "tokens_released"
	AttributeKeyPhase            = "phase"
	AttributeKeyAggregateCap     = "aggregate_cap"
	AttributeKeyIndividualCap    = "individual_cap"
	AttributeKeyPaused           = "paused"
	AttributeKeyAddress          = "address"
	AttributeKeyRecipient        = "recipient"
	AttributeKeyTotalContributed = "total_contributed"
)
