package toggle

// Action indicates which way a toggle went.
type Action uint8

const (
	// ActionNone is the zero action, reported with errors.
	ActionNone Action = iota
	// ActionAdded indicates the delimiter pair was added.
	ActionAdded
	// ActionRemoved indicates the delimiter pair was removed.
	ActionRemoved
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionAdded:
		return "added"
	case ActionRemoved:
		return "removed"
	default:
		return "none"
	}
}

// Strategy identifies which disambiguation strategy resolved a toggle.
type Strategy uint8

const (
	// StrategyNone is the zero strategy, reported with errors.
	StrategyNone Strategy = iota
	// StrategyContext matched the exact rendered context around the selection.
	StrategyContext
	// StrategyLine matched within the structural line index.
	StrategyLine
	// StrategyUnique matched a globally unique occurrence.
	StrategyUnique
	// StrategySelection used a buffer selection range directly.
	StrategySelection
)

// String returns a string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyContext:
		return "context"
	case StrategyLine:
		return "line"
	case StrategyUnique:
		return "unique"
	case StrategySelection:
		return "selection"
	default:
		return "none"
	}
}

// Result represents the outcome of a successful toggle.
type Result struct {
	// Action indicates whether delimiters were added or removed.
	Action Action

	// Text is the replacement produced by the toggle: the full document
	// for document toggles, the rewritten selection region for buffer
	// toggles.
	Text string

	// Strategy identifies how the occurrence was resolved.
	Strategy Strategy
}

// added creates a Result for an add toggle.
func added(text string, strategy Strategy) Result {
	return Result{Action: ActionAdded, Text: text, Strategy: strategy}
}

// removed creates a Result for a remove toggle.
func removed(text string, strategy Strategy) Result {
	return Result{Action: ActionRemoved, Text: text, Strategy: strategy}
}
