package environment

import "fmt"

// RoomType selects one of the predefined layout generators. It is a closed
// sum type parsed at the API/CLI boundary via ParseRoomType; internal code
// never carries a raw room-type string past that boundary.
type RoomType string

const (
	Empty          RoomType = "empty"
	Furnished      RoomType = "furnished"
	MultiRoom      RoomType = "multi_room"
	Corridor       RoomType = "corridor"
	ObstacleCourse RoomType = "obstacle_course"
	StairsTest     RoomType = "stairs_test"
)

// ErrUnknownRoomType is wrapped by ParseRoomType so callers can distinguish
// a malformed room type from other failures with errors.Is.
var ErrUnknownRoomType = fmt.Errorf("unknown room type")

// RoomTypes lists every valid RoomType in the order they are documented,
// used both for validation and for the /room-types query verb.
func RoomTypes() []RoomType {
	return []RoomType{Empty, Furnished, MultiRoom, Corridor, ObstacleCourse, StairsTest}
}

// ParseRoomType converts a raw string into a RoomType, rejecting anything
// outside the closed set.
func ParseRoomType(raw string) (RoomType, error) {
	for _, rt := range RoomTypes() {
		if string(rt) == raw {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRoomType, raw)
}

func (rt RoomType) String() string {
	return string(rt)
}
