package product

import "github.com/shopspring/decimal"

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// DefaultProducts returns the built-in catalog served when no external source
// is configured. A fresh slice is returned on every call.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:               "1",
			Slug:             "akoestisch-wandpaneel-zwart",
			Name:             "Akoestisch Wandpaneel Zwart",
			ShortDescription: "Stijlvol zwart wandpaneel voor optimale geluidsabsorptie",
			LongDescription:  "Dit hoogwaardige akoestische wandpaneel in elegant zwart is ontworpen voor maximale geluidsabsorptie. Perfect geschikt voor kantoren, thuiswerkplekken, woonkamers en professionele studio's. Het paneel vermindert echo en nagalm effectief, waardoor een aangename akoestische omgeving ontstaat. De moderne uitstraling past bij elk interieur en het paneel is eenvoudig te monteren met de meegeleverde montagekit.",
			Price:            price("89.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
				"https://images.unsplash.com/photo-1497366811353-6870744d04b2?w=800",
				"https://images.unsplash.com/photo-1497215728101-856f4ea42174?w=800",
			},
			Category: CategoryWall,
			Colors:   []string{"Zwart", "Grijs", "Wit"},
			Sizes:    []string{"60x60cm", "60x120cm", "100x100cm"},
			Material: "Akoestische stof",
			Variants: []Variant{
				{Size: "60x60cm", Price: price("89.95")},
				{Size: "60x120cm", Price: price("149.95")},
				{Size: "100x100cm", Price: price("179.95")},
			},
			Features:    []string{"NRC waarde: 0.85", "Brandklasse B1", "Eenvoudige montage", "Licht van gewicht"},
			InStock:     true,
			Rating:      4.8,
			ReviewCount: 124,
			SKU:         "WP-ZW-001",
			Tags:        []string{"bestseller", "kantoor", "thuiswerken"},
		},
		{
			ID:               "2",
			Slug:             "houten-wandpaneel-naturel",
			Name:             "Houten Wandpaneel Naturel",
			ShortDescription: "Luxe houten wandpaneel combineert design met functionaliteit",
			LongDescription:  "Dit prachtige houten wandpaneel combineert de warmte van natuurlijk hout met uitstekende akoestische eigenschappen. De voorzijde is gemaakt van hoogwaardig eikenhout met een matte afwerking, terwijl de achterzijde voorzien is van akoestisch absorbeermateriaal. Ideaal voor wie een natuurlijke uitstraling zoekt zonder concessies te doen aan geluidscomfort. Elk paneel is uniek door de natuurlijke houtnerven.",
			Price:            price("129.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
				"https://images.unsplash.com/photo-1600607687644-c7171b42498f?w=800",
				"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
			},
			Category: CategoryWall,
			Colors:   []string{"Naturel Eiken", "Walnoot"},
			Sizes:    []string{"60x120cm", "90x90cm"},
			Material: "Hout met akoestische achterzijde",
			Variants: []Variant{
				{Size: "60x120cm", Price: price("129.95")},
				{Size: "90x90cm", Price: price("149.95")},
			},
			Features:    []string{"Echt hout fineer", "NRC waarde: 0.75", "FSC gecertificeerd", "Inclusief montagekit"},
			InStock:     true,
			Rating:      4.9,
			ReviewCount: 89,
			SKU:         "WP-HN-002",
			Tags:        []string{"premium", "natuurlijk", "design"},
		},
		{
			ID:               "3",
			Slug:             "akoestisch-plafondpaneel-wit",
			Name:             "Akoestisch Plafondpaneel Wit",
			ShortDescription: "Discreet wit plafondpaneel met uitstekende geluidsabsorptie",
			LongDescription:  "Dit professionele plafondpaneel in strak wit is de perfecte oplossing voor kantoren, vergaderruimtes en openbare ruimtes. Het paneel past in standaard plafondgrids en biedt excellente geluidsabsorptie. De gladde witte afwerking reflecteert licht optimaal, wat bijdraagt aan een heldere en prettige werksfeer. Eenvoudig te installeren en te onderhouden.",
			Price:            price("79.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=800",
				"https://images.unsplash.com/photo-1497215842964-222b430dc094?w=800",
				"https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800",
			},
			Category: CategoryCeiling,
			Colors:   []string{"Wit", "Lichtgrijs"},
			Sizes:    []string{"60x60cm"},
			Material: "Minerale wol",
			Variants: []Variant{
				{Size: "60x60cm", Price: price("79.95")},
			},
			Features:    []string{"NRC waarde: 0.90", "Standaard plafondgrid formaat", "Vocht- en schimmelbestendig", "LED verlichting geschikt"},
			InStock:     true,
			Rating:      4.7,
			ReviewCount: 203,
			SKU:         "PP-WT-001",
			Tags:        []string{"kantoor", "professioneel"},
		},
		{
			ID:               "4",
			Slug:             "vilten-wandpaneel-design",
			Name:             "Vilten Wandpaneel Design",
			ShortDescription: "Designer wandpaneel in verschillende vormen voor creatieve composities",
			LongDescription:  "Creëer uw eigen unieke wandcompositie met deze designer vilten wandpanelen. Verkrijgbaar in diverse kleuren en vormen - van klassiek vierkant tot moderne hexagons. Het hoogwaardige vilt biedt uitstekende geluidsabsorptie en voegt textuur en warmte toe aan elke ruimte. Perfect voor creatieve kantoorruimtes, wachtkamers of als statement piece in uw woonkamer.",
			Price:            price("149.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800",
				"https://images.unsplash.com/photo-1631679706909-1844bbd07221?w=800",
				"https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?w=800",
			},
			Category: CategoryWall,
			Colors:   []string{"Antraciet", "Salie Groen", "Terracotta", "Mosterd", "Bordeaux", "Lichtblauw"},
			Sizes:    []string{"Vierkant 40x40cm", "Hexagon 40cm", "Rond 50cm"},
			Material: "Premium vilt",
			Variants: []Variant{
				{Size: "Vierkant 40x40cm", Price: price("49.95")},
				{Size: "Hexagon 40cm", Price: price("59.95")},
				{Size: "Rond 50cm", Price: price("69.95")},
			},
			Features:    []string{"100% recycled materiaal", "Zelfklevende achterzijde", "NRC waarde: 0.70", "Combineer kleuren en vormen"},
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 156,
			SKU:         "WP-VD-004",
			Tags:        []string{"design", "kleurrijk", "duurzaam"},
		},
		{
			ID:               "5",
			Slug:             "akoestisch-wandpaneel-grijs",
			Name:             "Akoestisch Wandpaneel Grijs",
			ShortDescription: "Tijdloos grijs wandpaneel voor elke ruimte",
			LongDescription:  "Dit veelzijdige grijze wandpaneel past in vrijwel elk interieur. De neutrale grijstint maakt het geschikt voor zowel moderne als klassieke ruimtes. Het paneel biedt dezelfde hoogwaardige geluidsabsorptie als onze andere wandpanelen, met een subtiele textuur die diepte toevoegt aan uw muur. Ideaal voor vergaderruimtes, slaapkamers en woonkamers.",
			Price:            price("84.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1497366412874-3415097a27e7?w=800",
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
				"https://images.unsplash.com/photo-1497366811353-6870744d04b2?w=800",
			},
			Category: CategoryWall,
			Colors:   []string{"Lichtgrijs", "Middengrijs", "Donkergrijs"},
			Sizes:    []string{"60x60cm", "60x120cm", "120x120cm"},
			Material: "Akoestische stof",
			Variants: []Variant{
				{Size: "60x60cm", Price: price("84.95")},
				{Size: "60x120cm", Price: price("139.95")},
				{Size: "120x120cm", Price: price("229.95")},
			},
			Features:    []string{"NRC waarde: 0.85", "Brandklasse B1", "UV-bestendig", "Eenvoudig schoon te maken"},
			InStock:     true,
			Rating:      4.7,
			ReviewCount: 98,
			SKU:         "WP-GR-005",
			Tags:        []string{"neutraal", "veelzijdig"},
		},
		{
			ID:               "6",
			Slug:             "plafondeiland-rond",
			Name:             "Plafondeiland Rond",
			ShortDescription: "Vrijhangend rond plafondpaneel voor open ruimtes",
			LongDescription:  "Dit indrukwekkende ronde plafondeiland is de perfecte oplossing voor grote open ruimtes waar traditionele plafondpanelen niet mogelijk zijn. Het paneel hangt vrij aan stalen kabels en absorbeert geluid van alle kanten. Ideaal voor recepties, restaurants, kantoortuinen en industriële ruimtes. Het moderne design maakt het zowel functioneel als decoratief.",
			Price:            price("249.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1497215842964-222b430dc094?w=800",
				"https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800",
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=800",
			},
			Category: CategoryCeiling,
			Colors:   []string{"Wit", "Grijs", "Zwart"},
			Sizes:    []string{"Ø100cm", "Ø150cm", "Ø200cm"},
			Material: "Akoestisch schuim met stoffen bekleding",
			Variants: []Variant{
				{Size: "Ø100cm", Price: price("249.95")},
				{Size: "Ø150cm", Price: price("349.95")},
				{Size: "Ø200cm", Price: price("449.95")},
			},
			Features:    []string{"360° geluidsabsorptie", "Inclusief ophangset", "Verstelbare hoogte", "LED verlichting optie"},
			InStock:     true,
			Rating:      4.9,
			ReviewCount: 45,
			SKU:         "PP-RD-006",
			Tags:        []string{"premium", "design", "grote-ruimtes"},
		},
		{
			ID:               "7",
			Slug:             "akoestisch-wandpaneel-wit",
			Name:             "Akoestisch Wandpaneel Wit",
			ShortDescription: "Klassiek wit wandpaneel voor een lichte uitstraling",
			LongDescription:  "Dit elegante witte wandpaneel brengt helderheid en rust in uw ruimte. Het neutrale wit past bij elk interieur en weerspiegelt het licht voor een ruimtelijk effect. De hoogwaardige stoffering is vlekbestendig en eenvoudig te onderhouden. Uitermate geschikt voor medische praktijken, kantoren en woonruimtes waar een frisse, schone uitstraling gewenst is.",
			Price:            price("89.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1497215842964-222b430dc094?w=800",
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=800",
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
			},
			Category: CategoryWall,
			Colors:   []string{"Zuiver Wit", "Gebroken Wit"},
			Sizes:    []string{"60x60cm", "60x120cm", "100x100cm"},
			Material: "Akoestische stof",
			Variants: []Variant{
				{Size: "60x60cm", Price: price("89.95")},
				{Size: "60x120cm", Price: price("149.95")},
				{Size: "100x100cm", Price: price("179.95")},
			},
			Features:    []string{"NRC waarde: 0.85", "Vlekbestendig", "Lichtreflecterend", "Antibacteriële afwerking"},
			InStock:     true,
			Rating:      4.8,
			ReviewCount: 167,
			SKU:         "WP-WT-007",
			Tags:        []string{"medisch", "clean", "kantoor"},
		},
		{
			ID:               "8",
			Slug:             "plafondpaneel-hout-look",
			Name:             "Plafondpaneel Hout-Look",
			ShortDescription: "Akoestisch plafondpaneel met authentieke houtuitstraling",
			LongDescription:  "Geniet van de warmte van hout aan uw plafond zonder het gewicht. Dit innovatieve plafondpaneel heeft een realistische houtprint gecombineerd met hoogwaardige akoestische eigenschappen. Perfect voor restaurants, hotels en woonruimtes waar sfeer en comfort samenkomen. Past in standaard plafondgrids en is onderhoudsvriendelijk.",
			Price:            price("99.95"),
			Images: []string{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
				"https://images.unsplash.com/photo-1600607687644-c7171b42498f?w=800",
				"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
			},
			Category: CategoryCeiling,
			Colors:   []string{"Eiken", "Walnoot", "Whitewash"},
			Sizes:    []string{"60x60cm", "30x120cm"},
			Material: "MDF kern met laminaat",
			Variants: []Variant{
				{Size: "60x60cm", Price: price("99.95")},
				{Size: "30x120cm", Price: price("109.95")},
			},
			Features:    []string{"NRC waarde: 0.80", "Realistische houtnerf", "Krasvast oppervlak", "Vochtwerende kern"},
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 72,
			SKU:         "PP-HL-008",
			Tags:        []string{"hout", "sfeer", "horeca"},
		},
	}
}
