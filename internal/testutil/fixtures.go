package testutil

// Sample session files

// SessionFileV1 is a version 1 session file with a plain, a DNF and a +2 solve.
var SessionFileV1 = `{
  "version": 1,
  "solves": [
    {"scramble": "R U R' U'", "time_ms": 5440},
    {"scramble": "L2 D B'", "penalty": "DNF"},
    {"scramble": "F R2 U", "time_ms": 9480, "penalty": "+2"}
  ],
  "updated_at": "2024-09-29T12:00:00Z"
}`

// EmptySessionFileV1 is a version 1 session file with no solves.
var EmptySessionFileV1 = `{"version": 1, "solves": [], "updated_at": "2024-09-29T12:00:00Z"}`

// FutureSessionFile has a version this build does not understand.
var FutureSessionFile = `{"version": 99, "solves": []}`

// InvalidRecordSessionFile holds a DNF record that also carries a time.
var InvalidRecordSessionFile = `{
  "version": 1,
  "solves": [
    {"scramble": "R", "time_ms": 1000},
    {"scramble": "U", "time_ms": 2000, "penalty": "DNF"}
  ]
}`
