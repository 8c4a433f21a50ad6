/*

Package mockless -> test doubles without a mocking framework



Pre Words

Everything here should be handled with a grain of salt, because it is an opinion on testing.
The ideas in this library came from years of writing services whose tests slowly rotted
around the mocking framework of the day, and from the realisation that the language already
ships with everything needed to substitute an external dependency in a test.

The library is intentionally small. It is not a framework, it has no DSL, and it does not
generate code. It is a convention, written down as types, so that a team can share the same
vocabulary when they talk about test doubles.



The Convention

Production code should depend on the smallest interface it can get away with.
If a function only executes statements, it should ask for an Execer, not for a *sql.DB.
If it also needs to commit, it should ask for the union of the two capabilities.
Interfaces are accepted as parameters and never returned where a concrete type exists,
because a returned interface hides capability from the caller.

Once dependencies are narrow, test doubles become trivial:

	- a named function type satisfies a single-method capability (sqlcap.ExecerFunc),
	- a struct with one function field per method satisfies a composed capability,
	  and lets each test inject exactly the behaviour it cares about (doubles.StubTx),
	- a recording variant captures the received arguments for later assertions
	  (doubles.RecorderTx).

Everything a double needs from the test framework is the ability to fail a test with a
message, which is what the T interface in this package expresses. *testing.T satisfies it,
and so does any compatible runner.



What this library will not do for you

It will not verify call expectations up front, it will not match arguments with a matcher
language, and it will not save you from designing your interfaces. If you want those
capabilities, gomock and testify remain excellent; the mocks package even keeps a
pregenerated gomock double around so the two styles can be compared side by side
on the same interfaces.



Worked examples

The examples directory holds two production-style consumers. examples/ledger writes
against the sqlcap capabilities and shows how a commit failure is tested with a recorder
and an observed logger. examples/notebook declares its own capability family over a
note journal, backs it with a real boltdb file, and tests the service with a
three-field stub, which is the whole convention applied from scratch.

*/
package mockless
