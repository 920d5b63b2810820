/*
Package logging provides a tinylog.Sink that sends log output from Tarmac
WebAssembly functions to the host runtime's logging capability.

Debug, Info, Warn and Error map to the host functions of the same name; Log
is sent as Info. Arguments are joined with spaces. The host has no notion of
groups, so open groups are rendered as a "outer > inner: " prefix on each
payload.

	sink, err := logging.New(logging.Config{})
	if err != nil {
		return err
	}
	log, err := tinylog.New(tinylog.Config{Name: "fn", Level: tinylog.LevelInfo, Stream: sink})

Host calls are best effort. Set Config.OnError to observe failures; each one
wraps ErrHostCall. Tests can inject custom host behaviour with
Config.HostCall, for example hostmock.Mock.HostCall.
*/
package logging
