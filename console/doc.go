/*
Package console provides the default output sink for the tinylog package: a
small console that writes debug, info and log output to stdout and warnings
and errors to stderr.

Arguments are joined with single spaces and terminated by a newline. Group
increases indentation for subsequent lines and GroupEnd decreases it, so
nested groups read like a browser console:

	c := console.New(console.Config{})
	c.Group("request")
	c.Info("status", 200)   // "  status 200"
	c.GroupEnd()

A Console is safe for concurrent use.
*/
package console
