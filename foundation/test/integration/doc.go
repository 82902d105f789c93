// Package integration provides integration tests for the nslist foundation library.
//
// Package: integration
// Title: nslist Foundation Integration Tests
// Description: Verifies the interaction between the foundation modules:
//              configuration selecting a list variant, the null-safe lists
//              reporting coded errors, and the logger rendering them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Integration tests for null-safe sequences
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Configuration driven construction of every list variant
// - Validation reports for batches with absent elements
// - Logging of list errors with their details
//
// Error Integration Tests (error_integration_test.go):
// - One error vocabulary across validation, seq, nullsafe and config
// - Severity and log level consistency for usage errors
// - Details preserved through wrapping
//
// Performance Integration Tests (performance_test.go):
// - Guard overhead of the decorator and the specialized list
// - Batch validation cost for growing batch sizes
package integration
