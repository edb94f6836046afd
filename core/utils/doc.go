// Package utils provides loose type conversion helpers shared by the support-kit
// packages. The date constructor uses them to accept integers and numeric
// strings interchangeably, and the full-text scorer uses them to render
// heterogeneous parts as searchable text.
package utils
