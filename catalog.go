/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"maps"
	"slices"
)

// Catalog is a read-only table of candidate names, grouped by league and
// then by season. Rounds draw from it but never modify it. Duplicate names
// within a season are allowed and simply weight that name more heavily.
type Catalog struct {
	entries map[string]map[string][]string
}

func newCatalog(entries map[string]map[string][]string) *Catalog {
	return &Catalog{entries: entries}
}

// Categories returns the league keys in sorted order.
func (c *Catalog) Categories() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// SubKeys returns the season keys for a league in sorted order.
func (c *Catalog) SubKeys(category string) []string {
	return slices.Sorted(maps.Keys(c.entries[category]))
}

// Candidates returns the names for a league and season. Callers must treat
// the returned slice as read-only.
func (c *Catalog) Candidates(category, subKey string) []string {
	return c.entries[category][subKey]
}

var defaultCatalog = newCatalog(map[string]map[string][]string{
	"nfl": {
		"2018": {"Patrick Mahomes", "Drew Brees", "Todd Gurley", "Saquon Barkley", "Aaron Donald", "Tyreek Hill", "DeAndre Hopkins", "Ezekiel Elliott", "Khalil Mack", "Philip Rivers"},
		"2019": {"Lamar Jackson", "Russell Wilson", "Michael Thomas", "Christian McCaffrey", "Derrick Henry", "Aaron Rodgers", "Chandler Jones", "Stephon Gilmore", "Dalvin Cook", "DeAndre Hopkins"},
		"2020": {"Tom Brady", "Patrick Mahomes", "Aaron Rodgers", "Russell Wilson", "Derrick Henry", "Davante Adams", "Travis Kelce", "Stefon Diggs", "Alvin Kamara", "T.J. Watt"},
		"2021": {"Aaron Rodgers", "Tom Brady", "Russell Wilson", "Derrick Henry", "Josh Allen", "Cooper Kupp", "Jonathan Taylor", "Justin Herbert", "Deebo Samuel", "Ja'Marr Chase"},
		"2022": {"Patrick Mahomes", "Jalen Hurts", "Joe Burrow", "Josh Allen", "Justin Jefferson", "Nick Chubb", "Travis Kelce", "Tyreek Hill", "Micah Parsons", "Saquon Barkley"},
		"2023": {"Lamar Jackson", "Brock Purdy", "Dak Prescott", "Christian McCaffrey", "Tyreek Hill", "CeeDee Lamb", "Amon-Ra St. Brown", "Myles Garrett", "Josh Allen", "Jared Goff"},
	},
	"nba": {
		"2018": {"James Harden", "LeBron James", "Anthony Davis", "Giannis Antetokounmpo", "Damian Lillard", "Kevin Durant", "Russell Westbrook", "Joel Embiid", "Stephen Curry", "Kawhi Leonard"},
		"2019": {"Giannis Antetokounmpo", "James Harden", "Kawhi Leonard", "Kevin Durant", "Stephen Curry", "Damian Lillard", "Nikola Jokic", "Joel Embiid", "Paul George", "Kyrie Irving"},
		"2020": {"LeBron James", "Stephen Curry", "Giannis Antetokounmpo", "Kevin Durant", "James Harden", "Anthony Davis", "Luka Doncic", "Jayson Tatum", "Jimmy Butler", "Nikola Jokic"},
		"2021": {"LeBron James", "Giannis Antetokounmpo", "Stephen Curry", "Kawhi Leonard", "Nikola Jokic", "Chris Paul", "Devin Booker", "Luka Doncic", "Joel Embiid", "Damian Lillard"},
		"2022": {"Nikola Jokic", "Joel Embiid", "Giannis Antetokounmpo", "Jayson Tatum", "Stephen Curry", "Luka Doncic", "Ja Morant", "Devin Booker", "Jimmy Butler", "DeMar DeRozan"},
		"2023": {"Joel Embiid", "Nikola Jokic", "Giannis Antetokounmpo", "Jayson Tatum", "Shai Gilgeous-Alexander", "Luka Doncic", "Jimmy Butler", "Stephen Curry", "Donovan Mitchell", "Jaylen Brown"},
	},
	"mlb": {
		"2018": {"Mookie Betts", "Mike Trout", "Christian Yelich", "J.D. Martinez", "Jacob deGrom", "Max Scherzer", "Chris Sale", "Jose Ramirez", "Francisco Lindor", "Blake Snell"},
		"2019": {"Mike Trout", "Cody Bellinger", "Christian Yelich", "Alex Bregman", "Gerrit Cole", "Justin Verlander", "Anthony Rendon", "Jacob deGrom", "Pete Alonso", "Ronald Acuna Jr."},
		"2020": {"Mike Trout", "Mookie Betts", "Aaron Judge", "Jacob deGrom", "Freddie Freeman", "Jose Abreu", "Shane Bieber", "Fernando Tatis Jr.", "Juan Soto", "Trevor Bauer"},
		"2021": {"Mike Trout", "Mookie Betts", "Trea Turner", "Jacob deGrom", "Juan Soto", "Shohei Ohtani", "Bryce Harper", "Vladimir Guerrero Jr.", "Corbin Burnes", "Fernando Tatis Jr."},
		"2022": {"Aaron Judge", "Shohei Ohtani", "Paul Goldschmidt", "Manny Machado", "Mookie Betts", "Justin Verlander", "Sandy Alcantara", "Yordan Alvarez", "Freddie Freeman", "Jose Altuve"},
		"2023": {"Ronald Acuna Jr.", "Shohei Ohtani", "Mookie Betts", "Freddie Freeman", "Corey Seager", "Matt Olson", "Corbin Carroll", "Gerrit Cole", "Juan Soto", "Adley Rutschman"},
	},
	"nhl": {
		"2018": {"Connor McDavid", "Nikita Kucherov", "Nathan MacKinnon", "Alexander Ovechkin", "Sidney Crosby", "Patrick Kane", "Brad Marchand", "Blake Wheeler", "Johnny Gaudreau", "Evgeni Malkin"},
		"2019": {"Nikita Kucherov", "Connor McDavid", "Patrick Kane", "Leon Draisaitl", "Brad Marchand", "Sidney Crosby", "Nathan MacKinnon", "Johnny Gaudreau", "Steven Stamkos", "Alexander Ovechkin"},
		"2020": {"Alexander Ovechkin", "Sidney Crosby", "Connor McDavid", "Nathan MacKinnon", "Leon Draisaitl", "Artemi Panarin", "David Pastrnak", "Auston Matthews", "Nikita Kucherov", "Andrei Vasilevskiy"},
		"2021": {"Connor McDavid", "Leon Draisaitl", "Nathan MacKinnon", "Auston Matthews", "David Pastrnak", "Mitch Marner", "Victor Hedman", "Sidney Crosby", "Brad Marchand", "Mikko Rantanen"},
		"2022": {"Connor McDavid", "Auston Matthews", "Leon Draisaitl", "Cale Makar", "Igor Shesterkin", "Jonathan Huberdeau", "Johnny Gaudreau", "Kirill Kaprizov", "Roman Josi", "Nathan MacKinnon"},
		"2023": {"Connor McDavid", "Leon Draisaitl", "David Pastrnak", "Nikita Kucherov", "Matthew Tkachuk", "Erik Karlsson", "Linus Ullmark", "Jason Robertson", "Mikko Rantanen", "Nathan MacKinnon"},
	},
})
