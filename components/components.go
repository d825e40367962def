// Package components defines the value types shared by the engine and the frontend:
// the 2D vector primitive, dots and colors.
package components
