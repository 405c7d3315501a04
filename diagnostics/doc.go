// This file is part of Mirage09.
//
// Mirage09 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mirage09 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mirage09.  If not, see <https://www.gnu.org/licenses/>.

// Package diagnostics is used by the CPU to report faults and to announce
// changes in the flow of execution.
//
// A fault is reported with ReportFault(). The report contains the CPU
// registers, the bytes at the top of the stack and a list of values on the
// stack that look like return addresses. The search for return addresses is a
// heuristic: every 16 bit value in the stack bytes that has a name is listed,
// whether or not it was pushed by a call. Reporting a fault puts the
// Diagnostics into the emergency state. There is no way out of the emergency
// state and the CPU should not be stepped once it has been entered.
//
// The trace hooks (OnBranch(), OnBranchToSubroutine(), OnNMI(), OnIRQ() and
// OnFIRQ()) are called by the CPU immediately before the change in execution.
// They log a line when the debug preference is set and pass a TraceEvent to
// any observers. The hooks never affect the CPU.
package diagnostics
