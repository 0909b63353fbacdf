package spam

// Action is a recommended moderation action for a scored content item.
type Action string

const (
	ActionAutoReject     Action = "auto_reject"
	ActionAccountSuspend Action = "account_suspend"
	ActionShadowban      Action = "shadowban"
	ActionManualReview   Action = "manual_review"
	ActionAutoApprove    Action = "auto_approve"
)

// UserHistory is the author-side input to the action policy.
type UserHistory struct {
	RepeatOffender bool
}

// RecommendedAction maps an overall score to a moderation action.
// Rules are evaluated top-down; the first match wins.
func RecommendedAction(score float64, history UserHistory) Action {
	switch {
	case score >= AutoRejectThreshold:
		return ActionAutoReject
	case score >= ShadowbanThreshold && history.RepeatOffender:
		return ActionAccountSuspend
	case score >= ShadowbanThreshold:
		return ActionShadowban
	case score >= ManualReviewThreshold:
		return ActionManualReview
	default:
		return ActionAutoApprove
	}
}
