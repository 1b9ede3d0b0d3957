package bracket

import "errors"

var (
	// ErrDegenerateBracket is returned when fewer than two teams are supplied.
	ErrDegenerateBracket = errors.New("at least 2 teams are required for a bracket")
	// ErrDuplicateTeam is returned when the same team is entered twice.
	ErrDuplicateTeam = errors.New("team entered more than once")

	// ErrInvalidResult is returned for tied or negative scores.
	ErrInvalidResult = errors.New("invalid result")
	// ErrUnknownMatch is returned when the match ID is not in the bracket.
	ErrUnknownMatch = errors.New("unknown match")
	// ErrByeMatch is returned when a result is submitted for a bye.
	ErrByeMatch = errors.New("bye matches cannot be scored")
	// ErrMatchNotReady is returned while a team slot is still undetermined.
	ErrMatchNotReady = errors.New("match is waiting for its teams")
	// ErrResultLocked is returned when a rescore would flip a winner that a
	// later, already decided match depends on.
	ErrResultLocked = errors.New("result is locked by a decided downstream match")

	// ErrMalformedBracket is returned by Validate.
	ErrMalformedBracket = errors.New("malformed bracket")
)
