package store

import "github.com/olegiv/folio-go/internal/model"

func layoutFixture(section string) model.SectionLayout {
	return model.SectionLayout{
		SectionName:   section,
		Arrangement:   model.ArrangementGrid2,
		Orientation:   model.OrientationVertical,
		Spacing:       model.SpacingRelaxed,
		ShowImage:     true,
		ImagePosition: model.ImagePositionTop,
		ImageSize:     model.ImageSizeMedium,
	}
}

func heroFixture(name string) model.HeroContent {
	return model.HeroContent{
		BadgeText:  "Welcome",
		Subtitle:   "Portfolio",
		Name:       name,
		Tagline:    "does things",
		Stat1Value: "10+",
		Stat1Label: "Projects",
	}
}
