/*

Process of compilation

Program Text ->
	parse ->
Symbolic Expressions (ast) ->
	compile ->
Target Program (asm) ->
	render ->
Assembly Text

*/
package compiler
