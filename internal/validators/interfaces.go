// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks typed settings after they have been bound from
// resolved properties.
//
// [StructValidator] runs go-playground validate tags over a settings struct
// and reports failing fields by their property names, so a message points
// at the key a user has to fix rather than at a Go field. Passing field
// names limits the check to those fields, which lets a single property be
// verified without the rest of the settings being present.
package validators

import "context"

// Validator validates bound settings. config.BindSettings depends on it.
type Validator interface {
	// Validate checks settings, a struct or pointer to struct, and reports every
	// failing field wrapped in ErrValidation. Field paths, when given,
	// restrict the check to those fields.
	Validate(ctx context.Context, settings any, fields ...string) error
}
