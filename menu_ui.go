package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/ui"
	"golang.org/x/image/font/basicfont"
)

// containerPanel adapts an ebitenui container to ui.Panel.
type containerPanel struct {
	c *widget.Container
}

func (p containerPanel) SetVisible(visible bool) {
	if visible {
		p.c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		p.c.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (p containerPanel) IsVisible() bool {
	return p.c.GetWidget().Visibility == widget.Visibility_Show
}

type menuActions struct {
	start  func()
	resume func()
	main   func()
	quit   func()
}

// newMenuUI builds the main and pause panels, both centered in one root. The
// returned panels are keyed by ui panel name.
func newMenuUI(actions menuActions) (*ebitenui.UI, map[string]ui.Panel) {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	mainPanel := newPanel(&face, "Mutant", []panelButton{
		{"Start", actions.start},
		{"Quit", actions.quit},
	})
	pausePanel := newPanel(&face, "Paused", []panelButton{
		{"Resume", actions.resume},
		{"Main Menu", actions.main},
		{"Quit", actions.quit},
	})
	root.AddChild(mainPanel)
	root.AddChild(pausePanel)

	panels := map[string]ui.Panel{
		ui.PanelMain:  containerPanel{c: mainPanel},
		ui.PanelPause: containerPanel{c: pausePanel},
	}
	return &ebitenui.UI{Container: root}, panels
}

type panelButton struct {
	label   string
	onClick func()
}

func newPanel(face *ebtext.Face, title string, buttons []panelButton) *widget.Container {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, face, white),
		widget.TextOpts.WidgetOpts(center),
	))

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, face, &widget.ButtonTextColor{Idle: white}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}
	return panel
}
