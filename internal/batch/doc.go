// Package batch sizes many circuits at once.
//
// A circuits file is a YAML document listing circuits together with defaults
// that apply to every circuit that leaves a field unset:
//
//	version: "1.0.0"
//	defaults:
//	  source_voltage: 120
//	  max_drop: 3
//	circuits:
//	  - name: kitchen
//	    task: size
//	    length: 85 ft
//	    current: 16
//	  - name: well-pump
//	    mode: ac
//	    size: "10"
//	    length: 60m
//	    current: 12
//	    source_voltage: 240
//	    conduit: {material: steel, count: 2}
//
// Each circuit builds its own conductor (or cable) and conduit, so circuits
// share no state and are evaluated concurrently by a Runner. Results are
// returned in file order regardless of completion order.
package batch
