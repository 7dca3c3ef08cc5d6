// Package pipeloop solves the pipe-maze puzzle: given a grid of pipe tiles
// with one start marker, it finds the closed loop through the start, how
// far along the loop its farthest cell is, and how many cells the loop
// encloses.
//
// Under the hood, the work is split across three packages:
//
//	grid/        tiles, positions, parsing, pipe connections, rendering
//	loop/        tracing the loop, BFS distances, orientation, Pick's count
//	area/        right-hand seeding, flood fill, enclosed/outside labels
//	schematic/   the unrelated engine-schematic number puzzle
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// The loop has 8 cells, its farthest cell is 4 steps from S, and it
// encloses the single cell in the middle.
//
// The pipeloop command wraps Solve and the schematic package:
//
//	pipeloop loop input.txt
//	pipeloop render input.txt
//	pipeloop schematic input.txt
package pipeloop
