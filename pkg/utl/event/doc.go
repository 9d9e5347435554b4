// Package event delays callbacks until a burst of calls has settled.
package event
