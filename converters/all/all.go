package all

import (
	// Import all the converters so they register themselves
	_ "github.com/darianmavgo/jobrolesql/converters/csv"
	_ "github.com/darianmavgo/jobrolesql/converters/excel"
)
