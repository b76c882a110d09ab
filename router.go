package main

import (
	handler "campus-show/biz/adaptor/controller"
	"campus-show/biz/adaptor/controller/campus"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	auth := r.Group("/auth")
	{
		auth.POST("/login", campus.SignIn)
		auth.POST("/logout", campus.SignOut)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", campus.ListCourses)
		courses.POST("", campus.CreateCourse)
		courses.GET("/:id", campus.GetCourse)
		courses.PUT("/:id", campus.UpdateCourse)
		courses.DELETE("/:id", campus.DeleteCourse)
		courses.POST("/:id/enroll", campus.EnrollInCourse)
		courses.GET("/:id/enrollments", campus.GetCourseEnrollments)
		courses.GET("/:id/assignments", campus.GetCourseAssignments)
		courses.GET("/:id/progress", campus.GetCourseProgress)
		courses.GET("/:id/certificates", campus.GetCourseCertificates)
		courses.GET("/:id/virtual-classes", campus.GetCourseVirtualClasses)
	}

	enrollments := r.Group("/enrollments")
	{
		enrollments.GET("/all", campus.ListAllEnrollments)
		enrollments.GET("/stats", campus.GetEnrollmentStats)
		enrollments.GET("/students/:id/enrollments", campus.GetStudentEnrollments)
		enrollments.GET("/courses/:id/enrollments", campus.GetEnrollmentsByCourse)
		enrollments.POST("/courses/:id/enroll", campus.EnrollCourse)
		enrollments.POST("/bulk", campus.BulkEnroll)
		enrollments.POST("/:id/approve", campus.ApproveEnrollment)
		enrollments.POST("/:id/reject", campus.RejectEnrollment)
		enrollments.PUT("/:id", campus.UpdateEnrollment)
		enrollments.DELETE("/:id", campus.CancelEnrollment)
	}

	assignments := r.Group("/assignments")
	{
		assignments.GET("/all", campus.ListAllAssignments)
		assignments.GET("/courses/:id/assignments", campus.ListCourseAssignments)
		assignments.GET("/:id", campus.GetAssignment)
		assignments.PUT("/:id", campus.UpdateAssignment)
		assignments.DELETE("/:id", campus.DeleteAssignment)
		assignments.POST("/:id/start", campus.StartAttempt)
		assignments.POST("/:id/submit", campus.SubmitAttempt)
		assignments.GET("/:id/my-attempts", campus.GetMyAttempts)
		assignments.GET("/:id/attempts", campus.GetAttempts)
		assignments.GET("/:id/pending-reviews", campus.GetPendingReviews)
		assignments.POST("/attempts/:id/manual-grade", campus.ManualGrade)
		assignments.POST("/:id/draft", campus.SaveDraft)
		assignments.GET("/:id/draft", campus.GetDraft)
	}

	userConfig := r.Group("/user-config")
	{
		userConfig.GET("/all-students", campus.ListAllStudents)
		userConfig.PATCH("/reset-student-password", campus.ResetStudentPassword)
		userConfig.GET("/my-profile", campus.GetMyProfile)
		userConfig.PATCH("/update-profile", campus.UpdateProfile)
	}
}
