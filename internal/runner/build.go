// ============================================================================
// nslist - Null-Safe Sequences
// ============================================================================
//
// Package:     runner
// Description: Construction of the configured null-safe list variant
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package runner

import (
	"github.com/msto63/nslist/foundation/collections/nullsafe"
	"github.com/msto63/nslist/foundation/collections/seq"
	"github.com/msto63/nslist/foundation/core/config"
	mdwerror "github.com/msto63/nslist/foundation/core/error"
)

// Build constructs the list selected by lc, seeded with seed. A nil seed
// yields an empty list; an absent element in seed fails with NULL_ARGUMENT
// and nothing is built.
func Build(lc config.ListConfig, seed []*string) (nullsafe.List[*string], error) {
	switch lc.Variant {
	case config.VariantDecorator:
		return buildDecorator(lc, seed)
	case config.VariantSpecialized:
		return buildSpecialized(lc, seed)
	default:
		return nil, mdwerror.Newf("unknown list variant %q", lc.Variant).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("runner.Build").
			WithDetail("variant", lc.Variant)
	}
}

func buildDecorator(lc config.ListConfig, seed []*string) (nullsafe.List[*string], error) {
	var backing seq.Sequence[*string]
	switch lc.Backing {
	case config.BackingArray:
		backing = seq.NewArrayList[*string](lc.InitialCapacity)
	case config.BackingLinked:
		backing = seq.NewLinkedList[*string]()
	default:
		return nil, mdwerror.Newf("unknown list backing %q", lc.Backing).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("runner.Build").
			WithDetail("backing", lc.Backing)
	}

	if lc.Synchronized {
		backing = seq.Synchronize(backing)
	}

	if seed == nil {
		list, err := nullsafe.Wrap(backing)
		if err != nil {
			return nil, err
		}
		return list, nil
	}

	list, err := nullsafe.WrapWith(backing, seed)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func buildSpecialized(lc config.ListConfig, seed []*string) (nullsafe.List[*string], error) {
	if lc.Backing != config.BackingArray {
		return nil, mdwerror.Newf("the specialized variant cannot use the %q backing", lc.Backing).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("runner.Build").
			WithDetail("backing", lc.Backing)
	}

	list, err := nullsafe.NewArrayList[*string](lc.InitialCapacity)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		if err := list.AppendAll(seed); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Combinations returns every buildable list configuration, used by selftest
func Combinations(capacity int) []config.ListConfig {
	return []config.ListConfig{
		{Variant: config.VariantDecorator, Backing: config.BackingArray, InitialCapacity: capacity},
		{Variant: config.VariantDecorator, Backing: config.BackingArray, InitialCapacity: capacity, Synchronized: true},
		{Variant: config.VariantDecorator, Backing: config.BackingLinked},
		{Variant: config.VariantDecorator, Backing: config.BackingLinked, Synchronized: true},
		{Variant: config.VariantSpecialized, Backing: config.BackingArray, InitialCapacity: capacity},
	}
}

// Describe names a list configuration for logs and reports
func Describe(lc config.ListConfig) string {
	name := lc.Variant + "/" + lc.Backing
	if lc.Synchronized {
		name += "+sync"
	}
	return name
}
