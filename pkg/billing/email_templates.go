package billing

import (
	"fmt"
	"time"
)

// buildTrialStartedEmail returns the email content for a newly started trial.
func buildTrialStartedEmail(name string, trialEnd *time.Time, baseURL string) (subject, html, plainText string) {
	subject = "Your ReplyFlow trial has started"

	endDate := "in 30 days"
	if trialEnd != nil {
		endDate = "on " + trialEnd.UTC().Format("January 2, 2006")
	}

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to ReplyFlow!</h2>
			<p>Hi %s,</p>
			<p>Your free trial is now active. Until it ends %s you get:</p>
			<ul>
				<li>100 AI actions per day</li>
				<li>Reply suggestions, drafts and summaries right in Gmail</li>
				<li>Smart email categorization</li>
			</ul>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open ReplyFlow</a></p>
			<p>Thanks,<br>The ReplyFlow Team</p>
		</body>
		</html>
	`, name, endDate, baseURL)

	plainText = fmt.Sprintf(`Hi %s,

Your free trial is now active. Until it ends %s you get:

- 100 AI actions per day
- Reply suggestions, drafts and summaries right in Gmail
- Smart email categorization

Open ReplyFlow: %s/dashboard

Thanks,
The ReplyFlow Team
`, name, endDate, baseURL)

	return
}

// buildSubscriptionCanceledEmail returns the email content for a canceled subscription.
func buildSubscriptionCanceledEmail(name, baseURL string) (subject, html, plainText string) {
	subject = "Your ReplyFlow subscription has been canceled"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Canceled</h2>
			<p>Hi %s,</p>
			<p>We're sorry to see you go. Your subscription has been canceled and your account has moved to the free plan.</p>
			<p>You keep 2 free AI actions per day, and you can resubscribe at any time:</p>
			<p><a href="%s/upgrade" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Resubscribe</a></p>
			<p>If you have any feedback, we'd love to hear from you at support@replyflow.app.</p>
			<p>Thanks,<br>The ReplyFlow Team</p>
		</body>
		</html>
	`, name, baseURL)

	plainText = fmt.Sprintf(`Hi %s,

We're sorry to see you go. Your subscription has been canceled and your account has moved to the free plan.

You keep 2 free AI actions per day, and you can resubscribe at any time:
%s/upgrade

If you have any feedback, we'd love to hear from you at support@replyflow.app.

Thanks,
The ReplyFlow Team
`, name, baseURL)

	return
}

// buildPaymentFailedEmail returns the email content when a payment fails.
func buildPaymentFailedEmail(name, baseURL string) (subject, html, plainText string) {
	subject = "Action required: Your ReplyFlow payment failed"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Failed</h2>
			<p>Hi %s,</p>
			<p>We were unable to process your latest payment for your ReplyFlow subscription.</p>
			<p>Please update your payment method to avoid service interruption:</p>
			<p><a href="%s/dashboard/billing" style="background-color: #E74C3C; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Update Payment Method</a></p>
			<p>Your premium access continues while we retry the payment.</p>
			<p>If you believe this is an error, please contact support@replyflow.app.</p>
			<p>Thanks,<br>The ReplyFlow Team</p>
		</body>
		</html>
	`, name, baseURL)

	plainText = fmt.Sprintf(`Hi %s,

We were unable to process your latest payment for your ReplyFlow subscription.

Please update your payment method to avoid service interruption:
%s/dashboard/billing

Your premium access continues while we retry the payment.

If you believe this is an error, please contact support@replyflow.app.

Thanks,
The ReplyFlow Team
`, name, baseURL)

	return
}
