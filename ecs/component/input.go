package component

// Intent is the already-debounced player input for one tick.
type Intent struct {
	MoveLeft    bool
	MoveRight   bool
	JumpPressed bool
}

var IntentComponent = NewComponent[Intent]()
