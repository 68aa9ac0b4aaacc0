// Package errors gives the catalog service coded errors that survive
// wrapping and map onto gRPC status codes.
//
// Repositories return NotFound or AlreadyExists. Orchestrators validate input
// with a ValidationBuilder and wrap lower-layer errors with Wrapf, which keeps
// the original code:
//
//	vb := errors.NewValidationBuilder()
//	if name == "" {
//	    vb.RequiredField("name")
//	}
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
//	out, err := o.monsterRepo.Get(ctx, monster.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to get monster")
//	}
//
// Handlers answer with ToGRPCError. Validation field reasons travel in the
// status details and FromGRPCError restores them on the client side.
package errors
