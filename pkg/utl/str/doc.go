// Package str holds string formatting, random id and hashing helpers.
//
// Hashing helpers validate their digest name and return an error for an
// unknown one; formatting helpers never fail.
package str
