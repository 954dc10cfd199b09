package songs

// MinSongs is the least number of songs TodaysSongs returns.
const MinSongs = 20

var fallbackSongs = []Song{
	{Title: "Espresso", Artist: "Sabrina Carpenter"},
	{Title: "BIRDS OF A FEATHER", Artist: "Billie Eilish"},
	{Title: "Good Luck, Babe!", Artist: "Chappell Roan"},
	{Title: "Not Like Us", Artist: "Kendrick Lamar"},
	{Title: "Million Dollar Baby", Artist: "Tommy Richman"},
	{Title: "A Bar Song (Tipsy)", Artist: "Shaboozey"},
	{Title: "Please Please Please", Artist: "Sabrina Carpenter"},
	{Title: "Too Sweet", Artist: "Hozier"},
	{Title: "I Had Some Help", Artist: "Post Malone"},
	{Title: "LUNCH", Artist: "Billie Eilish"},
	{Title: "Fortnight", Artist: "Taylor Swift"},
	{Title: "Beautiful Things", Artist: "Benson Boone"},
	{Title: "Gata Only", Artist: "FloyyMenor"},
	{Title: "Lose Control", Artist: "Teddy Swims"},
	{Title: "Texas Hold 'Em", Artist: "Beyoncé"},
	{Title: "End of Beginning", Artist: "Djo"},
	{Title: "Saturn", Artist: "SZA"},
	{Title: "We Can't Be Friends", Artist: "Ariana Grande"},
	{Title: "Like That", Artist: "Future"},
	{Title: "Austin", Artist: "Dasha"},
}

// Fallback returns a copy of the static list used when fetching fails.
func Fallback() []Song {
	return append([]Song(nil), fallbackSongs...)
}

func pad(list []Song) []Song {
	if len(list) >= MinSongs {
		return list
	}
	return append(list, fallbackSongs[:MinSongs-len(list)]...)
}
