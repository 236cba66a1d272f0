// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema validates and coerces a raw key-value bag against an ordered
// shape of per-key rules.
//
// A shape is produced by a [Factory] that receives the validator handle [*Z]:
//
//	shape := func(z *schema.Z) schema.Shape {
//		return schema.Shape{
//			schema.Key("NODE_ENV", z.Enum("development", "production")),
//			schema.Key("PORT", z.Number().Int()),
//			schema.Key("API_URL", z.Optional(z.String().URL())),
//		}
//	}
//
// [Parse] never panics on bad input and never stops at the first bad key: it
// returns either the transformed values or an [*Error] holding one [Issue] per
// failing key, in declaration order. Unknown keys are dropped from the result.
//
// Constraint checks are delegated to go-playground/validator tags, so
// [StringRule.Matches] accepts any tag that validator understands.
package schema
