// Mechconfig validates and inspects chemical mechanism configuration files.
//
// It reads mechanism documents in every supported schema generation (the
// legacy CAMP layout, v1 and v2), reports each defect with its location and
// a suggested fix, and can keep watching files as they are edited.
//
// Usage:
//
//	# Validate a single file
//	mechconfig validate --file mechanism.yaml
//
//	# Validate every mechanism file in a directory, as JSON for CI
//	mechconfig validate --dir configs/ --format json
//
//	# Print the parsed mechanism
//	mechconfig dump mechanism.yaml --format json
//
//	# Re-validate on change and every hour, exposing metrics
//	mechconfig watch configs/ --schedule "@hourly" --metrics-addr :9090
//
//	# List recent validation runs
//	mechconfig history --limit 10
//
//	# Show version information
//	mechconfig version
package main

func main() {
	Execute()
}
