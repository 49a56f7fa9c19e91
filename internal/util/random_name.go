package util

import (
	"blackjack/internal/rng"
	"fmt"
)

var random rng.Generator = rng.Crypto{}

var adjectives = []string{
	"Lucky", "Bold", "Cool", "Steady", "Sharp", "Quiet", "Sly", "Cheerful", "Daring", "Patient", "Brave",
	"Red", "Blue", "Green", "Golden", "Silver", "Velvet", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Wily", "Humble", "Swift", "Nimble", "Jumping", "Running", "Charging", "Stoic", "Dapper", "Fearless",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Otter",
	"Dolphin", "Hedgehog", "Lizard", "Owl", "Raven", "Falcon", "Eagle", "Wolf", "Fox", "Rhino", "Panda",
	"Badger", "Lynx", "Moose", "Koala", "Walrus", "Beaver", "Gecko", "Heron", "Bison", "Coyote",
}

// GetRandomName returns a random name by combining an adjective with an animal
// It names the player when the configuration doesn't.
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], animals[random.Intn(len(animals))])
}
