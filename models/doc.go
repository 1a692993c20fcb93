// Package models holds the shared contracts exchanged between Phylax services:
// entities, request envelopes and their enumerations.
//
// Every record decodes from JSON keyed by either its wire aliases (mostly
// camelCase) or its internal snake_case names, and encodes with wire names
// unless asked otherwise. Construction validates the payload and fails with a
// *schema.ContractValidationError naming the offending field. The mapping lives
// in struct tags and is applied by package schema; records carry no hand-written
// mapping code.
package models
