package cell

import "github.com/joshuapare/stablekit/pkg/types"

// ErrUnbound indicates a dereference of the zero Ref.
var ErrUnbound = &types.Error{Kind: types.ErrKindState, Msg: "cell: reference is not bound to an owner"}
