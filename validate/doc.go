// Package validate checks that the fields a component depends on are set
// (and, optionally, numerically sane) before the component starts running.
//
// A caller hands over an owner name, an ordered Set of checks and an ordered
// list of named values. Every check runs against every value, with no early exit.
// Violations are logged as errors, checks that do not apply to a value are
// logged as warnings, and the caller gets a single boolean (or a Report) back.
//
//	func (p *Player) Start(ctx context.Context) error {
//	    if !validate.ValidateAll(ctx, "Player", validate.DefaultSet().With(validate.UnderZeroCheck{}),
//	        validate.Named(p.weapon, "weapon"),
//	        validate.Named(p.health, "health"),
//	    ) {
//	        return errNotReady
//	    }
//	    ...
//	}
package validate
