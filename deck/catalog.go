// catalog.go holds the built-in 78-card tarot catalog.
//
// Numerals are assigned sequentially: majors 00-21, Wands 22-35,
// Cups 36-49, Swords 50-63, Pentacles 64-77.
package deck

import "fmt"

// Suit start indices for sequential numbering. "coins" is accepted as
// an alias of Pentacles in deck files.
const (
	wandsStart     = 22
	cupsStart      = 36
	swordsStart    = 50
	pentaclesStart = 64
)

// cardSpec is the raw material for one suited card: description plus
// ordered key symbols.
type cardSpec struct {
	desc    string
	symbols []string
}

func major(name, num, desc string, symbols ...string) Card {
	return Card{
		Name:        name,
		Numeral:     num,
		Arcana:      ArcanaMajor,
		Description: desc,
		KeySymbols:  symbols,
	}
}

// MajorArcana returns the 22 major arcana cards, numerals 00-21.
func MajorArcana() []Card {
	return []Card{
		major("The Fool", "00",
			"A young traveler at cliff's edge with a small dog, about to step into the unknown",
			"cliff", "knapsack", "white rose", "small dog"),
		major("The Magician", "01",
			"A figure at a table with arms raised, one pointing up and one down, tools of magic before them",
			"infinity symbol", "wand", "cup", "sword", "pentacle", "table"),
		major("The High Priestess", "02",
			"A serene woman seated between two pillars, a crescent moon at her feet, holding a scroll",
			"two pillars", "crescent moon", "scroll", "veil", "pomegranates"),
		major("The Empress", "03",
			"A regal woman on a throne amid lush nature, crowned with stars, holding a scepter",
			"crown of stars", "wheat field", "scepter", "cushioned throne", "flowing water"),
		major("The Emperor", "04",
			"An authoritative figure on a stone throne with ram heads, holding an ankh scepter",
			"stone throne", "ram heads", "ankh scepter", "armor", "mountains"),
		major("The Hierophant", "05",
			"A robed religious figure seated between pillars, blessing two acolytes, holding a triple cross",
			"triple cross", "two acolytes", "pillars", "raised hand", "crown"),
		major("The Lovers", "06",
			"Two figures beneath an angel in the sky, a tree of knowledge and tree of life behind them",
			"angel", "two figures", "tree of knowledge", "tree of life", "sun"),
		major("The Chariot", "07",
			"A warrior in a chariot pulled by two sphinxes, one black and one white, under a starry canopy",
			"chariot", "two sphinxes", "starry canopy", "armor", "city behind"),
		major("Strength", "08",
			"A gentle figure calmly closing a lion's mouth, infinity symbol above their head",
			"lion", "infinity symbol", "garland of flowers", "white robe"),
		major("The Hermit", "09",
			"A cloaked elder atop a mountain holding a lantern with a six-pointed star inside",
			"lantern", "six-pointed star", "staff", "mountain peak", "cloak"),
		major("Wheel of Fortune", "10",
			"A great wheel with mystical symbols, figures rising and falling, sphinx atop",
			"wheel", "sphinx", "serpent", "anubis", "mystical symbols", "clouds"),
		major("Justice", "11",
			"A seated figure holding a sword upright in one hand and balanced scales in the other",
			"sword", "scales", "throne", "crown", "purple veil"),
		major("The Hanged Man", "12",
			"A figure suspended upside-down from a living tree by one foot, serene expression, halo of light",
			"living tree", "suspended figure", "halo", "crossed leg"),
		major("Death", "13",
			"A skeleton in armor riding a white horse, carrying a black flag with a white rose",
			"skeleton", "white horse", "black flag", "white rose", "rising sun"),
		major("Temperance", "14",
			"A winged angel pouring water between two cups, one foot on land and one in water",
			"angel wings", "two cups", "flowing water", "path to mountains", "triangle"),
		major("The Devil", "15",
			"A horned figure on a pedestal with two chained figures below, inverted pentagram above",
			"horned figure", "chains", "two figures", "inverted pentagram", "pedestal"),
		major("The Tower", "16",
			"A tall tower struck by lightning, crown blown off the top, figures falling from windows",
			"tower", "lightning bolt", "falling figures", "crown", "flames"),
		major("The Star", "17",
			"A nude figure kneeling by a pool pouring water onto land and into the pool, stars above",
			"large star", "seven smaller stars", "two vessels", "pool", "bird in tree"),
		major("The Moon", "18",
			"A moon with a face between two towers, a dog and wolf howling, a crayfish emerging from water",
			"moon face", "two towers", "dog", "wolf", "crayfish", "winding path"),
		major("The Sun", "19",
			"A joyful child on a white horse beneath a radiant sun, sunflowers behind a wall",
			"radiant sun", "child", "white horse", "sunflowers", "red banner"),
		major("Judgement", "20",
			"An angel blowing a trumpet from the clouds, figures rising from coffins below",
			"angel", "trumpet", "rising figures", "coffins", "mountains", "clouds"),
		major("The World", "21",
			"A dancing figure inside a laurel wreath, four creatures in each corner",
			"laurel wreath", "dancing figure", "angel", "eagle", "bull", "lion"),
	}
}

// pip ranks in order; rank 1 is rendered as "Ace".
var pipRanks = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

// court ranks in order after the pips.
var courtRanks = []string{"Page", "Knight", "Queen", "King"}

// suitCards builds the 14 cards of one suit with sequential numbering
// from startIndex. Pips come first (Ace..10), then the court.
func suitCards(suit string, startIndex int, pips, court map[string]cardSpec) []Card {
	cards := make([]Card, 0, len(pipRanks)+len(courtRanks))
	i := 0
	for _, rank := range pipRanks {
		spec := pips[rank]
		name := rank + " of " + suit
		if rank == "1" {
			name = "Ace of " + suit
		}
		cards = append(cards, Card{
			Name:        name,
			Numeral:     numeral(startIndex + i),
			Arcana:      ArcanaMinor,
			Suit:        suit,
			Description: spec.desc,
			KeySymbols:  spec.symbols,
		})
		i++
	}
	for _, rank := range courtRanks {
		spec := court[rank]
		cards = append(cards, Card{
			Name:        fmt.Sprintf("%s of %s", rank, suit),
			Numeral:     numeral(startIndex + i),
			Arcana:      ArcanaMinor,
			Suit:        suit,
			Description: spec.desc,
			KeySymbols:  spec.symbols,
		})
		i++
	}
	return cards
}

var wandsPips = map[string]cardSpec{
	"1":  {"A hand emerging from a cloud holding a single budding wand", []string{"hand", "cloud", "budding wand", "leaves"}},
	"2":  {"A figure holding a globe looks out from a castle battlement, two wands mounted on the wall", []string{"globe", "castle", "two wands", "sea"}},
	"3":  {"A figure on a cliff gazing at ships on the sea, three wands planted behind them", []string{"cliff", "ships", "three wands", "horizon"}},
	"4":  {"A celebration scene with four wands forming a canopy decorated with garlands", []string{"four wands", "garland", "castle", "celebrating figures"}},
	"5":  {"Five figures wielding wands in chaotic conflict on rough terrain", []string{"five wands", "five figures", "struggle", "rough ground"}},
	"6":  {"A rider on horseback wearing a laurel wreath, attendants carrying six wands", []string{"horseback rider", "laurel wreath", "six wands", "attendants"}},
	"7":  {"A figure on a hill defending their position against six wands rising from below", []string{"hilltop", "defending figure", "seven wands", "uneven ground"}},
	"8":  {"Eight wands flying through the air over an open landscape at speed", []string{"eight wands", "open sky", "landscape", "river"}},
	"9":  {"A wounded but vigilant figure leaning on a wand, eight wands arrayed behind them", []string{"bandaged figure", "nine wands", "defensive stance"}},
	"10": {"A figure struggling under the weight of ten wands, walking toward a distant town", []string{"ten wands", "burdened figure", "distant town", "path"}},
}

var wandsCourt = map[string]cardSpec{
	"Page":   {"A youthful figure in a desert landscape holding a wand and gazing at it with wonder", []string{"wand", "desert", "tunic", "salamanders"}},
	"Knight": {"An armored rider on a rearing horse charging forward, brandishing a wand", []string{"rearing horse", "wand", "armor", "pyramids"}},
	"Queen":  {"A queen on a throne holding a wand and sunflower, a black cat at her feet", []string{"throne", "wand", "sunflower", "black cat", "lions"}},
	"King":   {"A king on a throne adorned with salamanders, holding a flowering wand", []string{"throne", "salamanders", "flowering wand", "crown", "cape"}},
}

var cupsPips = map[string]cardSpec{
	"1":  {"A hand from a cloud holds an overflowing chalice, a dove descends toward it", []string{"hand", "cloud", "overflowing cup", "dove", "lotus"}},
	"2":  {"Two figures exchange cups beneath a winged lion head, a caduceus between them", []string{"two figures", "two cups", "caduceus", "winged lion"}},
	"3":  {"Three maidens raise their cups in celebration in a garden of flowers and fruit", []string{"three maidens", "three cups", "garden", "fruit"}},
	"4":  {"A figure sits under a tree looking discontent, three cups on the ground, a hand offers a fourth", []string{"tree", "seated figure", "four cups", "hand from cloud"}},
	"5":  {"A cloaked figure in grief before three spilled cups, two cups still standing behind", []string{"cloaked figure", "three spilled cups", "two standing cups", "bridge", "river"}},
	"6":  {"Children in a garden with six cups filled with flowers, a nostalgic village scene", []string{"children", "six cups", "flowers", "village", "garden"}},
	"7":  {"A silhouetted figure gazes at seven cups in the clouds, each holding a different vision", []string{"silhouette", "seven cups", "clouds", "visions", "castle", "jewels", "snake"}},
	"8":  {"A figure walks away from eight stacked cups toward mountains under a moon", []string{"departing figure", "eight cups", "mountains", "moon", "river"}},
	"9":  {"A content figure sits with arms crossed before nine golden cups arranged on a curved table", []string{"seated figure", "nine cups", "curved table", "satisfaction"}},
	"10": {"A joyful family beneath a rainbow of ten cups, a cottage and garden in background", []string{"family", "ten cups", "rainbow", "cottage", "garden"}},
}

var cupsCourt = map[string]cardSpec{
	"Page":   {"A young figure in flowing robes gazes at a cup with a fish emerging from it", []string{"cup", "fish", "flowing robes", "sea"}},
	"Knight": {"A knight on a calm horse holds a cup forward, a river flowing beneath them", []string{"horse", "cup", "river", "wings on helmet"}},
	"Queen":  {"A queen on an ornate throne at the water's edge, holding a elaborate chalice", []string{"ornate throne", "chalice", "water", "cherubs", "pebbles"}},
	"King":   {"A king on a throne amid turbulent seas, holding a cup and scepter", []string{"throne", "cup", "scepter", "turbulent sea", "ship"}},
}

var swordsPips = map[string]cardSpec{
	"1":  {"A hand from a cloud grips a gleaming sword, a crown and wreath at its tip", []string{"hand", "cloud", "sword", "crown", "wreath", "mountains"}},
	"2":  {"A blindfolded figure sits balancing two crossed swords, a crescent moon over calm water", []string{"blindfold", "two swords", "crescent moon", "calm water"}},
	"3":  {"A heart pierced by three swords under dark storm clouds, rain falling", []string{"heart", "three swords", "storm clouds", "rain"}},
	"4":  {"A figure lies in repose on a tomb, three swords on the wall and one beneath them", []string{"tomb", "resting figure", "four swords", "stained glass window"}},
	"5":  {"A smirking figure picks up three swords while two defeated figures walk away, stormy sky", []string{"victor", "five swords", "defeated figures", "stormy sky", "water"}},
	"6":  {"A ferryman guides a boat with a woman and child across water, six swords in the bow", []string{"boat", "ferryman", "woman and child", "six swords", "calm water"}},
	"7":  {"A figure sneaks away from a camp carrying five swords, two swords left planted", []string{"sneaking figure", "seven swords", "camp", "tents"}},
	"8":  {"A bound and blindfolded figure surrounded by eight swords stuck in muddy ground", []string{"bound figure", "blindfold", "eight swords", "muddy ground", "castle"}},
	"9":  {"A figure sits up in bed, head in hands in anguish, nine swords on the dark wall behind", []string{"bed", "anguished figure", "nine swords", "dark wall", "quilt"}},
	"10": {"A figure lies face down with ten swords in their back, a dark sky with a hint of dawn", []string{"fallen figure", "ten swords", "dark sky", "dawn on horizon"}},
}

var swordsCourt = map[string]cardSpec{
	"Page":   {"A youthful figure strides over rough ground holding a sword aloft, windswept clouds", []string{"sword", "windswept clouds", "rough ground", "birds"}},
	"Knight": {"A knight charges on a galloping horse brandishing a sword, butterflies in the wind", []string{"galloping horse", "sword", "wind", "butterflies", "storm clouds"}},
	"Queen":  {"A queen on a stone throne holds a sword upright, her free hand raised, cloudy sky", []string{"stone throne", "sword", "raised hand", "clouds", "bird"}},
	"King":   {"A stern king on a throne holds a sword, trees bend in a strong wind behind him", []string{"throne", "sword", "wind-bent trees", "butterflies", "storm clouds"}},
}

var pentaclesPips = map[string]cardSpec{
	"1":  {"A hand from a cloud holds a golden pentacle over a lush garden with an archway", []string{"hand", "cloud", "golden pentacle", "garden", "archway", "lilies"}},
	"2":  {"A juggler dances holding two pentacles in a figure eight, ships on a wavy sea behind", []string{"juggler", "two pentacles", "infinity loop", "ships", "waves"}},
	"3":  {"A stonemason works on a cathedral arch, three pentacles in the design, monks observe", []string{"stonemason", "three pentacles", "cathedral", "monks", "tools"}},
	"4":  {"A figure clutches a pentacle to their chest atop a pile, two under feet, one on crown", []string{"figure", "four pentacles", "city background", "miserly pose"}},
	"5":  {"Two destitute figures trudge through snow past a lit church window with five pentacles", []string{"two figures", "snow", "five pentacles", "stained glass window", "tattered clothes"}},
	"6":  {"A wealthy merchant weighs pentacles on a scale, giving to kneeling figures", []string{"merchant", "six pentacles", "scale", "kneeling figures", "generosity"}},
	"7":  {"A farmer leans on a hoe gazing at a bush bearing seven pentacles, patient waiting", []string{"farmer", "hoe", "seven pentacles", "bush", "patience"}},
	"8":  {"A craftsman carefully carves pentacles at a workbench, a town in the background", []string{"craftsman", "workbench", "eight pentacles", "tools", "town"}},
	"9":  {"A well-dressed figure in a luxurious garden with a falcon, surrounded by nine pentacles", []string{"garden", "falcon", "nine pentacles", "grapevines", "manor"}},
	"10": {"A multigenerational family under an archway with ten pentacles, dogs at their feet", []string{"family", "ten pentacles", "archway", "dogs", "estate"}},
}

var pentaclesCourt = map[string]cardSpec{
	"Page":   {"A studious youth holds up a pentacle, standing in a green field with young trees", []string{"pentacle", "green field", "young trees", "studious pose"}},
	"Knight": {"A knight on a sturdy, still horse holds a pentacle, a plowed field stretches behind", []string{"sturdy horse", "pentacle", "plowed field", "patient stance"}},
	"Queen":  {"A queen sits on a throne in a flowering garden, cradling a pentacle, a rabbit nearby", []string{"throne", "pentacle", "flowering garden", "rabbit"}},
	"King":   {"A prosperous king on a throne decorated with bull carvings, pentacle on lap, castle grounds", []string{"throne", "bull carvings", "pentacle", "castle", "grapevines"}},
}

// MinorArcana returns the 56 suited cards, numerals 22-77.
func MinorArcana() []Card {
	cards := make([]Card, 0, 56)
	cards = append(cards, suitCards("Wands", wandsStart, wandsPips, wandsCourt)...)
	cards = append(cards, suitCards("Cups", cupsStart, cupsPips, cupsCourt)...)
	cards = append(cards, suitCards("Swords", swordsStart, swordsPips, swordsCourt)...)
	cards = append(cards, suitCards("Pentacles", pentaclesStart, pentaclesPips, pentaclesCourt)...)
	return cards
}

// AllCards returns the complete 78-card catalog in numeral order.
func AllCards() []Card {
	return append(MajorArcana(), MinorArcana()...)
}
