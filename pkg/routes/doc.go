/*
Package routes defines the public route table contract for the Foyer shell.

A Route maps a URL path to a page. The shell consumes the table to mount
handlers and to build the navigation bar; the only visibility rule (hide
navigation on the root path) also lives here so every presentation layer
agrees on it.
*/
package routes
