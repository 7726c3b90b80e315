// Package ui renders the loginbox screen with Bubble Tea.
//
// Core pieces:
//   - AppModel: the root model. It owns the login flag and the message list
//     and derives every other view from them on each render.
//   - Greeting, Button, Mailbox: leaf views with no state of their own.
//   - KeybindRegistry / KeyHandler: key dispatch and help hints.
//
// Leaves never write state. Buttons return a command whose message
// (LoginMsg or LogoutMsg) is handled by the root.
package ui
