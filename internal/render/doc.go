// Package render turns results and errors into the text the CLI prints.
package render
