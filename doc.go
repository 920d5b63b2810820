/*
Package tinylog provides a tiny leveled logger for Tarmac functions and other
space-constrained programs.

A Logger wraps a Sink (by default the process console) and forwards a message
only when its level is at or above the configured minimum. Levels are ordered
debug < info < warn < error < fatal; the LevelSilent sentinel suppresses
everything. Zero-value Config options fall back to sensible defaults: the
name "app", LevelWarn, the built-in Format function and console.Default().

	log, err := tinylog.New(tinylog.Config{Name: "App", Level: tinylog.LevelInfo})
	if err != nil {
		return err
	}
	log.Debug("what is this")       // suppressed
	log.Info("starting app")
	log.Warn("something might fail")
	log.Fatal("everything is bad")  // routed to the sink's Error channel

Groups bracket related messages. GroupEnd always runs, even when the callback
fails or panics, and the callback's error is returned unchanged:

	err = log.Group("starting group", func() error {
		log.Info("here we go")
		return nil
	})

Sinks for the Tarmac host logging capability, logrus and logr live in the
logging, logrussink and logrsink packages.
*/
package tinylog
