// Package commands contains business operations that modify system state.
// Each operation is a command object paired with a handler: commands are
// constructor-validated input contracts, handlers coordinate the domain model
// and the repository ports. No request field reaches the domain before its
// command has been constructed and validated.
package commands
