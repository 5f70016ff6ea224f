// Package lessons is the runnable catalogue behind cmd/genlab.
//
// Each Lesson prints a short demonstration of one package of this module to
// Env.Out. Lessons are independent: none of them reads state left by another.
package lessons
