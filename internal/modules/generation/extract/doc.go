// Package extract turns generator text into structured values.
//
// Question lines follow the marker protocol
//
//	qstn:<question> opt:<a,b,c,d> ans:<answer>[ top:<topic>]
//
// one record per line. Lines that do not qualify are skipped, never fatal.
package extract
