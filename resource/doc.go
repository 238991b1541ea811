// Package resource models the metadata a document-oriented service reports
// about itself: its path, its backing document description, and its declared
// route table with per-route parameters, response types, and support levels.
//
// A batch of these records is the assembler's only input. The package also
// defines the standard utility document types every service exposes through
// its stats, config, subscriptions, template, and availability sub-paths;
// their schemas are derived by the describe package and referenced from the
// assembled document.
package resource
