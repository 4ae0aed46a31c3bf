// Package shell provides the line-oriented interactive menu for the blood bank.
// It is a driving adapter: it reads from an io.Reader, writes to an io.Writer,
// and calls the core only through the driving ports.
//
// # State Machine
//
// The shell starts in StateMenuWait. Each menu Command moves it into the
// matching flow state, runs the flow, and returns it to StateMenuWait.
// StateExit is terminal; it is reached by choosing Exit or by end of input.
//
// # Input Rules
//
//   - Text fields are read as whole lines, so names and addresses may contain spaces.
//   - Blood groups are normalised to uppercase before validation.
//   - A non-integer age is rejected and prompted for again.
//   - Domain errors are printed and the shell returns to the menu.
package shell
