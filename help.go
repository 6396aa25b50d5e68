package main

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a new game against the engine\n")
	io.WriteString(w, "show - print the current board\n")
	io.WriteString(w, "play <row> <col> - make your move; the engine replies\n")
	io.WriteString(w, "best - let the engine move for the side to play\n")
	io.WriteString(w, "auto [n] - play n engine-vs-greedy games and print stats\n")
	io.WriteString(w, "book build - build the opening book and save it to book.path\n")
	io.WriteString(w, "set <option> <value> - change method, heuristic, depth, iterative or clock\n")
	io.WriteString(w, "exit - leave the shell\n")
}
