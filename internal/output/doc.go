// Package output renders report snapshots for display or machine
// consumption. Writers are pure: same snapshot in, same string out, apart
// from the embedded generation timestamp.
package output
