// Package model defines the template catalog consumed by the engine, the form
// controller and the renderers. A Catalog is an ordered, read-only list of
// Entry values; each Entry pairs a template string containing `{{KEY}}`
// placeholders with the fields that supply those keys. Fields form a closed set
// of variants (Dropdown, Text, Checkbox) decoded once from the wire schema
// (EntrySpec/FieldSpec) so downstream code can switch on concrete types instead
// of comparing type strings. Lint reports authoring problems such as
// placeholders without a field; runtime code never enforces them.
package model
