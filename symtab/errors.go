package symtab

import "errors"

var (
	// ErrUnknownKind signals a strategy name or Kind that does not exist.
	ErrUnknownKind = errors.New("symtab: unknown kind")

	// Validate failures.
	ErrOrder        = errors.New("symtab: keys out of order")
	ErrSize         = errors.New("symtab: size augmentation mismatch")
	ErrHeap         = errors.New("symtab: priority heap order violated")
	ErrRootColor    = errors.New("symtab: red root")
	ErrRedRed       = errors.New("symtab: red node with red child")
	ErrBlackHeight  = errors.New("symtab: unequal black height")
	ErrParentLink   = errors.New("symtab: inconsistent parent link")
	ErrUnevenLeaves = errors.New("symtab: leaves at different depths")
	ErrArity        = errors.New("symtab: invalid node arity")
)
