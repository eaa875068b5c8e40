/*
Package cnx implements a ledger connection session. A Session owns at most one
pool handle and one wallet handle at a time, plus state derived from them: the
submitter DID and the latest transaction author agreement (TAA) read from the
ledger.

Open provisions the pool ledger config and the wallet idempotently, i.e. an
already existing config or wallet is not an error, and then connects both. A
pool that cannot be opened is only logged, because wallet operations must work
offline. Such a session is half-open: the wallet handle is present, the pool
handle isn't, and IsOpen returns false. Every wallet side failure is returned
as an *Error.

Open, Close, CreateSubmitterDID and RetrieveTAA are serialized per session.
Sessions sharing a pool config name or a wallet name are serialized between
each other as well, and the process-wide libindy protocol version is set and
used under one global lock. Reads like IsOpen and Status never block.

The actual ledger primitives come through the Client interface. Package indy
has the libindy implementation.
*/
package cnx
