package catalog

// Default returns the reference onboarding catalog. Each call returns a fresh
// copy.
func Default() *Catalog {
	return &Catalog{Stages: []Stage{
		{
			ID:          0,
			Title:       "Stage 0: Welcome to Clarity",
			Summary:     "Your journey begins once you’ve accepted your quote. This officially kicks off the installation process.",
			Duration:    0,
			IsMilestone: true,
		},
		{
			ID:      1,
			Title:   "Stage 1: Getting Started",
			Summary: "We organize your project team and activate the workflow that keeps everything on track.",
			Bullets: []string{
				"Order Assignment – Your accepted order is assigned to a Provisioning Specialist.",
				"Welcome Email – You’ll receive a confirmation email with an outline of the next steps.",
				"Workflow Setup – We create an internal workflow to track your project from start to finish.",
			},
			Duration: 3,
		},
		{
			ID:      2,
			Title:   "Stage 2: Kickoff Call",
			Summary: "Align on goals, review your network, and set a target installation date with your Project Installer.",
			Bullets: []string{
				"Installer Introduction – A Project Installer will schedule your kickoff call.",
				"Target Date & Network Discovery – Together, we’ll discuss your goals and select a target installation date.",
				"Configuration Discussion – We’ll talk through how your account should be set up to best serve your business needs.",
			},
			Duration: 4,
		},
		{
			ID:      3,
			Title:   "Stage 3: Planning Your Setup",
			Summary: "We configure your account, confirm the virtual install date, and order equipment or new numbers.",
			Bullets: []string{
				"Account Configuration – Setting up routing, extensions, SMS, and more.",
				"Virtual Install Scheduling – We’ll work with you to confirm your virtual installation date.",
				"Equipment & Numbers – Ordering your phones, equipment, and any new phone numbers needed.",
			},
			Duration: 6,
		},
		{
			ID:      4,
			Title:   "Stage 4: Getting Online",
			Summary: "Your system is installed virtually and your team is trained on the Clarity Voice Portal.",
			Bullets: []string{
				"Virtual Installation & Training – Your system will be installed virtually and we’ll provide training on the portal.",
			},
			Duration: 3,
		},
		{
			ID:      5,
			Title:   "Stage 5: Number Porting",
			Summary: "We coordinate with your current provider to port numbers, test routing, and activate service.",
			Bullets: []string{
				"Port Request – We submit the order to move your phone numbers from your current provider to Clarity.",
				"Testing & Activation – On port day, we test your numbers and routing to ensure a smooth transition.",
			},
			Duration: 5,
			Note:     "Please allow up to 10 business days after services are online for number porting to be fully completed.",
		},
		{
			ID:          6,
			Title:       "Stage 6: Welcome Aboard!",
			Summary:     "Congratulations! Your Clarity Voice system is now fully live and you’re connected with our Customer Experience team.",
			Bullets:     []string{"Customer Experience Introduction – Meet the team who will support you moving forward."},
			Duration:    0,
			IsMilestone: true,
		},
	}}
}
