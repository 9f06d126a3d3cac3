// Package view implements the viewer's three-state machine: Loading, List and Detail.
//
// A [Machine] owns the loaded collection and the current [State]. It is deliberately free of any
// rendering or platform code so every transition can be exercised in a plain unit test:
//
//	Loading --Loaded--> List --Select(id)--> Detail(id) --Back--> List
//	   |
//	 Failed (error panel over Loading, terminal)
//
// Successful List/Detail transitions return [Event] values of kind [NavigationRecorded]. A history
// adapter turns them into history entries; replaying an entry goes through [Machine.Restore], which
// never emits events so replays are not recorded twice.
//
// Requests for a sheet id that is not in the collection fail with [shared.ErrUnknownSheetID] and leave
// the state untouched. The machine logs them; front ends do not surface them to the user.
package view
