/*
Package hostmock provides a pretend waPC host for testing the logging sink
without a running Tarmac host.

The mock checks that calls use the expected namespace, capability and one of
the expected functions, optionally runs a payload validator, and records
every call so tests can assert on exactly what reached the host.

	m, _ := hostmock.New(hostmock.Config{
		ExpectedNamespace:  "tarmac",
		ExpectedCapability: "logging",
		ExpectedFunctions:  []string{"Info", "Error"},
	})

	sink, _ := logging.New(logging.Config{HostCall: m.HostCall})
	sink.Info("hello")

	for _, c := range m.Calls() {
		// c.Function, string(c.Payload)
	}

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise HostCall enforces the expectations that are set and runs
    PayloadValidator when provided. Blank expectations act as wildcards.
  - Calls are recorded before any validation, so rejected calls show up too.
*/
package hostmock
