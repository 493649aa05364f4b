// Package integrationtests drives the whole application, from input files on
// disk to the printed report.
package integrationtests
