// Package environment names the deployment environments a binary can run in
// and normalizes the short aliases people tend to type.
//
//	env := environment.Parse(os.Getenv("TEXTKIT_ENV")) // "prod" -> Production
package environment
