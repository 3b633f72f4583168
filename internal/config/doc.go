// Package config loads scraper configuration and constructs the well-formed
// target URLs the page objects consume. The core never builds or validates
// URLs beyond what this package hands it.
package config
