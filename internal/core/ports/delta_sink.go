package ports

/*
DeltaSink receives shell alias deltas (alias/unalias lines) produced by
mutating commands. The wrapper function installed by 'aliasmgr init' reads
them from a dedicated file descriptor and evals them in the parent shell.
*/
type DeltaSink interface {
	// Send writes one delta. Implementations decide what a missing channel
	// means; an error here never rolls back the config change that produced
	// the delta.
	Send(delta string) error
}
