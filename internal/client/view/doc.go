// Package view is the presentation binding of the terminal client.
//
// A Document is a set of named regions that can be shown or hidden. The
// Switcher toggles the two navigation regions according to the session
// mode, and a TabView holds the visible state of one content tab's list.
// Coordinators never print; they update these values and the REPL renders
// them.
package view
