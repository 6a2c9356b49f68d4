package camera_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/marble/internal/camera"
	"github.com/san-kum/marble/internal/engine"
)

var _ = Describe("Follow", func() {
	var (
		follow camera.Follow
		marble *engine.Body
	)

	BeforeEach(func() {
		follow = camera.Follow{
			Offset: mgl64.Vec3{0, 6, -12},
			Look:   mgl64.Vec3{0, -2, 8},
			Rate:   5.0,
		}
		marble = &engine.Body{Position: mgl64.Vec3{1, 2, 3}}
	})

	Describe("Update", func() {
		It("leaves a camera already at the target in place", func() {
			cam := &camera.State{Position: follow.Target(marble.Position)}
			follow.Update(cam, marble, 1.0/60.0)
			Expect(cam.Position).To(Equal(follow.Target(marble.Position)))
		})

		It("monotonically closes the distance to the target", func() {
			cam := &camera.State{Position: mgl64.Vec3{0, 20, -30}}
			target := follow.Target(marble.Position)

			prev := cam.Position.Sub(target).Len()
			for i := 0; i < 10; i++ {
				follow.Update(cam, marble, 1.0/60.0)
				d := cam.Position.Sub(target).Len()
				Expect(d).To(BeNumerically("<", prev))
				prev = d
			}
		})

		It("snaps exactly to the target when rate*dt reaches one", func() {
			cam := &camera.State{Position: mgl64.Vec3{0, 20, -30}}
			follow.Update(cam, marble, 1.0) // rate*dt = 5
			Expect(cam.Position).To(Equal(follow.Target(marble.Position)))
		})

		It("ignores a nil marble", func() {
			cam := &camera.State{Position: mgl64.Vec3{0, 20, -30}}
			follow.Update(cam, nil, 1.0/60.0)
			Expect(cam.Position).To(Equal(mgl64.Vec3{0, 20, -30}))
		})

		It("ignores a nil camera", func() {
			follow.Update(nil, marble, 1.0/60.0)
		})
	})

	Describe("LookTarget", func() {
		It("keeps the view direction fixed while tracking laterally", func() {
			left := &engine.Body{Position: mgl64.Vec3{-3, 2, 3}}
			right := &engine.Body{Position: mgl64.Vec3{3, 2, 3}}

			camL := &camera.State{}
			camR := &camera.State{}
			follow.Update(camL, left, 1.0) // snap
			follow.Update(camR, right, 1.0)

			dirL := follow.LookTarget(*camL).Sub(camL.Position)
			dirR := follow.LookTarget(*camR).Sub(camR.Position)
			Expect(dirL).To(Equal(dirR))
			Expect(dirL.X()).To(BeZero())
		})
	})
})
